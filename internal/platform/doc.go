package platform

// Package platform contains OS-specific path and filesystem helpers used by
// the planner: asset lookup with fallbacks and the per-user log location.
