/*
Package ports defines the driven ports (interfaces) of pitchflow.

# Key Interfaces

  - TreeLoader: Supplies a parsed DecisionTree (e.g., from a YAML file, a Loam repository or memory).
  - Navigator: The stateful traversal surface driven by runners and the terminal UI.
  - Describer: Optional naming of a loader source, used for logging and titles.
*/
package ports
