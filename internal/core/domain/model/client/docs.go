// Package client models the registered users who send and receive packages.
package client
