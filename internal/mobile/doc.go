// Package mobile implements the single-surface mobile state machine: one
// primary view, a collapsible secondary zone with ordered height tiers, and
// unread tracking for the zone's terminal and chat tabs.
package mobile
