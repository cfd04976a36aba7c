package version

// Version tracks the platform release the built-in feature table targets.
var Version = "2.2.0"
