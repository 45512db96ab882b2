// Package display renders a wgraph.Graph and its paths for human inspection.
//
// Show prints the vertex and edge counts followed by one block per vertex
// listing its neighbors and edge weights. It reads the graph only through
// VertexCount, EdgeCount and Neighbors.
package display
