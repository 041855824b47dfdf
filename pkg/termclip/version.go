package termclip

// Version is the release version reported by --version.
const Version = "1.0.0"
