package listing

import (
	"fmt"
	"strings"

	"skiff/internal/picker"
)

// Preview renders the preview block for any entry a query produced.
// It never fails; an empty field renders as a labeled empty value.
func Preview(e picker.Entry) string {
	switch v := e.Value.(type) {
	case Container:
		return RenderContainer(v)
	case Volume:
		return RenderVolume(v)
	case Image:
		return RenderImage(v)
	}
	return ""
}

func RenderContainer(c Container) string {
	return block("# "+c.Names,
		field("ID", c.ID),
		field("Image", c.Image),
		field("Command", c.Command),
		field("State", c.State),
		field("Status", c.Status),
		field("Created", c.CreatedAt),
		field("Running for", c.RunningFor),
		field("Ports", c.Ports),
		field("Networks", c.Networks),
		field("Mounts", c.Mounts),
		field("Local volumes", c.LocalVolumes),
		field("Size", c.Size),
		field("Labels", c.Labels),
	)
}

func RenderVolume(v Volume) string {
	return block("# "+v.Name,
		field("Driver", v.Driver),
		field("Scope", v.Scope),
		field("Mountpoint", v.Mountpoint),
		field("Availability", v.Availability),
		field("Status", v.Status),
		field("Size", v.Size),
		field("Group", v.Group),
		field("Links", v.Links),
		field("Labels", v.Labels),
	)
}

func RenderImage(i Image) string {
	return block("# "+i.Ref(),
		field("Repository", i.Repository),
		field("Tag", i.Tag),
		field("ID", i.ID),
		field("Digest", i.Digest),
		field("Created", i.CreatedAt),
		field("Created since", i.CreatedSince),
		field("Containers", i.Containers),
		field("Size", i.Size),
		field("Shared size", i.SharedSize),
		field("Unique size", i.UniqueSize),
		field("Virtual size", i.VirtualSize),
	)
}

func field(label, value string) string {
	return fmt.Sprintf("- **%s**: %s", label, value)
}

func block(title string, fields ...string) string {
	return title + "\n\n" + strings.Join(fields, "\n") + "\n"
}
