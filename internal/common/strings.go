package common

// UnknownStr is the String() value of unrecognized enum members.
const UnknownStr = "unknown"
