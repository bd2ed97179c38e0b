// Package viz renders sorting traces in the terminal.
//
// The interactive view is a bubbletea program showing one card per
// algorithm. Each card draws the current snapshot as vertical bars with
// compared positions and moved positions highlighted, alongside the
// player's progress and the counts of the finished trace.
//
// Cards are driven by a playback.Controller; the view only reads
// controller statuses on a refresh tick and forwards key presses as
// controller operations.
package viz
