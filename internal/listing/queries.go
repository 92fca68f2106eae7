package listing

import (
	"context"

	"skiff/internal/picker"
)

// Runner is the subset of dockercli.Runner the queries need.
type Runner interface {
	Run(ctx context.Context, args ...string) []string
}

// Containers lists containers via `docker ps`. Each entry wraps one decoded
// line; lines that fail to decode are dropped.
func Containers(ctx context.Context, r Runner) []picker.Entry {
	var entries []picker.Entry
	for _, line := range r.Run(ctx, "ps") {
		c, ok := DecodeContainer(line)
		if !ok {
			continue
		}
		entries = append(entries, picker.Entry{
			Value:   c,
			Display: c.Names,
			Ordinal: c.ID + " " + c.Names,
		})
	}
	return entries
}

// Volumes lists volumes via `docker volume ls`.
func Volumes(ctx context.Context, r Runner) []picker.Entry {
	var entries []picker.Entry
	for _, line := range r.Run(ctx, "volume", "ls") {
		v, ok := DecodeVolume(line)
		if !ok {
			continue
		}
		entries = append(entries, picker.Entry{
			Value:   v,
			Display: v.Name,
			Ordinal: v.Name,
		})
	}
	return entries
}

// Images lists images via `docker images`. Repository:Tag is the identity;
// the ID is part of the search key so either form is matchable.
func Images(ctx context.Context, r Runner) []picker.Entry {
	var entries []picker.Entry
	for _, line := range r.Run(ctx, "images") {
		img, ok := DecodeImage(line)
		if !ok {
			continue
		}
		display := img.Ref()
		entries = append(entries, picker.Entry{
			Value:   img,
			Display: display,
			Ordinal: display + " " + img.ID,
		})
	}
	return entries
}
