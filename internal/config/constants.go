package config

import "time"

// Base application details
const AppName = "easel"
const DefaultConfigFileName = "config.toml" // Main config file
const DefaultLogFileName = "easel.log"

// Canvas
const DefaultHistory = "recording"
const DefaultMaxHistory = 100

// Replay output
const DefaultSink = "text"
const DefaultReplayLabel = "The shapes are now: "
const DefaultShowLabel = "Canvas shapes: "

// Screen sink
const DefaultThemeName = "Easel Dark"

// Status messages
const MessageTimeout = 4 * time.Second
