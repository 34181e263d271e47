package utils

// Version gets software version
var Version string

// Buildstamp gives timestamp of binary build
var Buildstamp string

// Githash contains the hash of git when software was built
var Githash string
