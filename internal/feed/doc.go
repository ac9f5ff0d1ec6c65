// Package feed builds the canonical in-memory post index and answers the
// queries the page renderer consumes: sorted posts, tags, and static props.
package feed
