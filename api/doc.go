// Package api defines the public contracts of the cbridge library:
// bridged callback signatures and handles, the abstracted action host
// surface, structured errors, and the control/introspection interface.
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
package api
