// Package render draws a maze.Grid together with the path marked by a
// search.
//
// Text writes the '#'-art maze format with on-path rooms drawn as '*'.
// Screen draws the same layout onto a tcell terminal screen.
//
// Both only read the grid and a PathMarker; *mazepath.Engine is a
// PathMarker, valid until its next PathSearch.
package render
