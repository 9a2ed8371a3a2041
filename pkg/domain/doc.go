/*
Package domain contains the core domain models of a pitchflow decision flow.

It defines the decision tree document handed over by a loader, and the small set
of runtime values the engine exposes to a presentation layer. This package is kept
pure and free of external dependencies like I/O or persistence.

# Key Entities

  - DecisionTree: The immutable document (theme, goal, start, nodes, outcomes).
  - DecisionNode: A decision point presenting a prompt and a set of options.
  - DecisionOption: A selectable choice whose Target leads to a node or an outcome.
  - Outcome: A terminal narrative. Still navigable via back/restart.
  - Step: One entry of the navigation history.
  - MissingTarget: A dangling reference detected during traversal.
  - ResolvedView: What the presentation layer should render for the current step.
*/
package domain
