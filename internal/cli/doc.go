// Package cli implements the autograd command-line tool's commands.
//
// Commands:
//
//	logreg   One forward/backward pass of a logistic neuron
//	train    Fit a logistic neuron on a synthetic data set
//	version  Print the build version
package cli
