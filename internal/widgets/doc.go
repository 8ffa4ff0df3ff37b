// Package widgets provides adapters that arrange other nodes (Frame, Scroll,
// Panes, Graft, Root) and leaf widgets for building applications (Text,
// List, Input, StatusBar, Tabs).
package widgets
