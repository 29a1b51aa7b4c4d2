// Package sink provides ready-made subscription callbacks: a structured
// log sink, a NATS publisher and a fan-out combinator.
package sink
