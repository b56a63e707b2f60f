package rowify

import (
	"io"

	"gopkg.in/yaml.v3"
)

func writeYAML(w io.Writer, records []Record) error {
	if records == nil {
		records = []Record{}
	}
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(records); err != nil {
		return err
	}
	return enc.Close()
}
