// SPDX-License-Identifier: EPL-2.0

// Package aiff demuxes AIFF and AIFC containers using
// github.com/go-audio/aiff. Importing the package registers the format
// with the default demux registry.
package aiff
