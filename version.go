// SPDX-License-Identifier: EPL-2.0

package audiohelper

// Version is the library release version, also exposed through the
// C boundary's get_version.
const Version = "0.2.0"
