// Package control
// Author: momentics <momentics@gmail.com>
//
// Runtime introspection for cbridge: a thread-safe metrics registry with
// counters, named debug probes (including a built-in dump of every
// process-wide callback registry), and platform-specific probe sets.
package control
