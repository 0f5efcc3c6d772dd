// Package charset assembles the pool of characters a generated string may
// contain. A pool starts from predefined sets (digits, letters, separators,
// misc symbols) and is adjusted by user-supplied entries that enable or
// disable whole sets or add and remove individual characters.
package charset
