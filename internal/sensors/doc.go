// Package sensors provides sample sources for graph entities.
//
// Host metrics are read through gopsutil. A Probe owns short-lived caches
// so that the sources it hands out (one per core, one per interface) share
// a single system read per tick. Command sources run an external program
// and parse its output as a number or, with a JSON path, through gjson.
package sensors
