package platform

// Package platform contains OS/platform integration glue: filesystem helpers,
// the external encoder PATH lookup, and OS open/reveal of downloaded files.
