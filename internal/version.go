package internal

// Version is the current polyglot version
const Version = "0.1.0"
