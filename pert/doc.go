// Package pert schedules activity networks.
//
// The graph models an activity-on-edge project: nodes are milestones and
// each directed edge carries the duration of the activity between them
// through its weight. PERT runs the forward pass, assigning every
// milestone its earliest occurrence time as the maximum over incoming
// activities of the predecessor time plus the activity duration; sources
// start at zero. CPM extends the pass with argmax predecessor links and
// reads back the critical path, the chain of milestones whose activities
// admit no slack.
//
// Scheduling needs an acyclic network. A cycle is a defined "no schedule
// exists" outcome reported through the boolean, mirroring the topological
// sort underneath, never an error.
package pert
