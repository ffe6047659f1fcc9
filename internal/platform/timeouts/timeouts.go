// Package timeouts defines shared timeout constants used across services.
package timeouts

import "time"

// GRPCDial caps the wait for a peer to report healthy after dialing.
const GRPCDial = 5 * time.Second

// GRPCRequest caps one unary or server-stream call issued by a front-end.
const GRPCRequest = 10 * time.Second

// MealSession caps one interactive meal session opened by a front-end.
const MealSession = time.Minute

// Shutdown limits how long a server waits for in-flight calls during
// graceful stop before forcing it.
const Shutdown = 30 * time.Second
