package timerun

// Version is the library's semantic version. It is used as a general purpose, global
// version identifier, including as the release tag attached to emitted metrics.
const Version = "0.2.0"
