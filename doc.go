// Package smartselect provides a single- and multi-select dropdown component
// for Bubble Tea programs, with text filtering over local option lists or
// debounced remote queries, keyboard navigation, and viewport-aware
// flip-above/below popover placement.
//
// The component follows the usual Model/Update/View contract. The host embeds
// a Model in its own model, forwards messages to Update, renders the trigger
// with View, and splices PopoverView into its frame with Overlay while the
// popover is open. Selection changes are reported back as SelectionChangedMsg
// values rather than callbacks, so the host stays in charge of its own
// update loop.
//
// Geometry is abstracted behind the Surface interface: the component asks the
// surface to measure its trigger and popover by element id and computes
// placement from the results. Hosts that cannot measure yet simply keep the
// popover hidden; nothing is ever rendered at a guessed position.
package smartselect
