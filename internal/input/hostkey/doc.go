// Package hostkey converts key events from terminal toolkits into
// key.Event records.
//
// key.Event uses browser key codes, which describe physical keys rather
// than characters. Terminal toolkits deliver characters, so printable
// runes are mapped back to the key that produces them on a US layout:
// 'B' becomes shift+b, '!' becomes shift+1 and '+' becomes the plus key.
// Characters that have no key code of their own are reported as not
// convertible.
//
// Terminals report the Meta modifier for Alt on most platforms, so Meta
// is folded into Alt.
package hostkey
