// Package snconfig persists configuration values as one file per config name
// under a config root directory. A type opts in by implementing Config and, if
// it has compiled-in defaults, Defaulter. Files are named
// sn-config-<name>.<ext> and are written at most once: saving never overwrites
// an existing file, so hand-edited configs survive later default saves.
package snconfig
