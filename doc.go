// Package main provides the entry point for the rand-str-gen command-line
// tool. It assembles a pool of characters from predefined and user-supplied
// sets, then prints one or more strings drawn uniformly at random from that
// pool. Optionally the last generated string is placed on the OS clipboard.
package main
