package model

// Package model defines domain data structures used across the app: fleet
// drones, telemetry positions, missions, and status enums. Structures are
// designed for direct rendering in the UI and explicit state transitions.
