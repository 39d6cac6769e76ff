/*
Package observability provides tools for monitoring dial simulations.

It turns the runner's lifecycle hooks into Prometheus metrics so that command
throughput, zero crossings and parse failures can be scraped from a long
running server.
*/
package observability
