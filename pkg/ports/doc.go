/*
Package ports defines the driven ports (interfaces) of the labyrinth engine.

These interfaces decouple the simulator from external implementations, so
runs can be stored in memory, on disk or in Redis and mazes can come from any library.

# Key Interfaces

  - RunStore: persists classified runs (memory, file, Redis).
  - MazeLibrary: lists and loads automaton definitions by name (Loam, memory).
  - Simulator: what the HTTP and MCP adapters drive.
*/
package ports
