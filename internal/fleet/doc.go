package fleet

// Package fleet keeps the in-process state of the drone fleet: link status,
// GPS availability, last positions, and the current mission run. The UI
// renders whatever this registry reports; a telemetry feeder may call the
// update methods from any goroutine. Drones and missions handed out by
// getters and callbacks are snapshot copies taken under the registry lock.
