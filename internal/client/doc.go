// Package client implements the sync agent runtime.
//
// It wires the relay session, credential material, and background
// synchronization into a single process lifecycle: sign in, bootstrap cloud
// sync if this device has never synced, run one full cycle, then keep the
// periodic worker alive until the process is stopped.
package client
