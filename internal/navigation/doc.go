// Package navigation holds the interactive state shared by the portfolio
// chrome: the overlay menus (mobile drawer, social popover), the scroll
// driven compact navbar, the light/dark theme switch, active route
// highlighting and page enter/exit transitions.
//
// Nothing in this package draws. Renderers attach Regions after each layout
// pass and feed host events (scroll offsets, pointer presses) through a Hub;
// the state machines subscribe to the Hub for as long as they need to and
// hand their Subscriptions back on Unmount.
//
// All types assume a single goroutine, which is what a bubbletea Update
// loop provides. None of them lock.
package navigation
