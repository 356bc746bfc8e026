// seehuhn.de/go/reportpaint - paintables and hit regions for report pages
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.


package hyperlink

import (
	"encoding/json"
)

type refJSON struct {
	Name             string      `json:"name,omitempty"`
	Link             string      `json:"link"`
	Type             Type        `json:"type,omitempty"`
	TargetFrame      string      `json:"target,omitempty"`
	Tooltip          string      `json:"tooltip,omitempty"`
	SendReportParams bool        `json:"sendParams,omitempty"`
	DisablePrompting bool        `json:"noPrompt,omitempty"`
	Params           []paramJSON `json:"params,omitempty"`
}

type paramJSON struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

// MarshalJSON implements the [json.Marshaler] interface.
// Parameter values are written using the default JSON encoding, so after
// decoding all numbers are float64 values.
func (r *Ref) MarshalJSON() ([]byte, error) {
	enc := refJSON{
		Name:             r.Name,
		Link:             r.Link,
		Type:             r.Type,
		TargetFrame:      r.TargetFrame,
		Tooltip:          r.Tooltip,
		SendReportParams: r.SendReportParams,
		DisablePrompting: r.DisablePrompting,
	}
	for _, p := range r.params {
		enc.Params = append(enc.Params, paramJSON{Name: p.Name, Value: p.Value})
	}
	return json.Marshal(enc)
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
func (r *Ref) UnmarshalJSON(data []byte) error {
	var dec refJSON
	err := json.Unmarshal(data, &dec)
	if err != nil {
		return err
	}
	*r = Ref{
		Name:             dec.Name,
		Link:             dec.Link,
		Type:             dec.Type,
		TargetFrame:      dec.TargetFrame,
		Tooltip:          dec.Tooltip,
		SendReportParams: dec.SendReportParams,
		DisablePrompting: dec.DisablePrompting,
	}
	for _, p := range dec.Params {
		r.params = append(r.params, Param{Name: p.Name, Value: p.Value})
	}
	return nil
}
