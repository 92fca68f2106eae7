// Package listing decodes docker CLI JSON lines into typed entries and
// formats them for the picker's preview pane.
package listing

// Field values are kept verbatim as the CLI prints them; nothing is parsed
// into numbers or timestamps. A field missing from a given docker version
// decodes to the empty string.

// Container mirrors one line of `docker ps --format json`.
type Container struct {
	ID           string `json:"ID"`
	Names        string `json:"Names"`
	Command      string `json:"Command"`
	Labels       string `json:"Labels"`
	Image        string `json:"Image"`
	LocalVolumes string `json:"LocalVolumes"`
	Mounts       string `json:"Mounts"`
	Networks     string `json:"Networks"`
	Ports        string `json:"Ports"`
	Size         string `json:"Size"`
	State        string `json:"State"`
	Status       string `json:"Status"`
	CreatedAt    string `json:"CreatedAt"`
	RunningFor   string `json:"RunningFor"`
}

// Volume mirrors one line of `docker volume ls --format json`.
type Volume struct {
	Name         string `json:"Name"`
	Labels       string `json:"Labels"`
	Availability string `json:"Availability"`
	Driver       string `json:"Driver"`
	Group        string `json:"Group"`
	Links        string `json:"Links"`
	Scope        string `json:"Scope"`
	Size         string `json:"Size"`
	Status       string `json:"Status"`
	Mountpoint   string `json:"Mountpoint"`
}

// Image mirrors one line of `docker images --format json`.
type Image struct {
	Repository   string `json:"Repository"`
	Tag          string `json:"Tag"`
	ID           string `json:"ID"`
	Containers   string `json:"Containers"`
	Digest       string `json:"Digest"`
	CreatedAt    string `json:"CreatedAt"`
	CreatedSince string `json:"CreatedSince"`
	SharedSize   string `json:"SharedSize"`
	Size         string `json:"Size"`
	UniqueSize   string `json:"UniqueSize"`
	VirtualSize  string `json:"VirtualSize"`
}

// Ref returns the reference used to run the image: Repository:Tag, or the
// image ID when the repository or tag is untagged. Repository alone is
// ambiguous when several tags share it.
func (i Image) Ref() string {
	if i.Repository == "" || i.Repository == "<none>" {
		return i.ID
	}
	if i.Tag == "" || i.Tag == "<none>" {
		return i.ID
	}
	return i.Repository + ":" + i.Tag
}
