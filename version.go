package dial

// Version is the current release of the dial module.
var Version = "0.1.0"
