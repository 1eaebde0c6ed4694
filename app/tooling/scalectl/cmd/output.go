package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"text/tabwriter"

	v1 "github.com/ardanlabs/scalability/business/web/v1"
	"gopkg.in/yaml.v3"
)

// render writes v in the requested format. The text function is only used
// for the text format.
func render(w io.Writer, format string, v any, text func(tw *tabwriter.Writer)) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)

	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	text(tw)
	return tw.Flush()
}

// =============================================================================

// calculate runs a model locally or, when a service url is configured, asks
// the service to run it with the same parameters.
func calculate[T any](opts *options, kind string, params map[string]any, local func() (T, error)) (T, error) {
	if opts.url == "" {
		return local()
	}

	var res T

	body, err := json.Marshal(params)
	if err != nil {
		return res, fmt.Errorf("encoding parameters: %w", err)
	}

	url := fmt.Sprintf("%s/v1/calculate/%s", strings.TrimSuffix(opts.url, "/"), kind)
	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return res, fmt.Errorf("calling service: %w", err)
	}
	defer resp.Body.Close()

	if err := decodeResponse(resp, &res); err != nil {
		return res, err
	}

	return res, nil
}

// fetch reads published figures locally or from a running service.
func fetch[T any](opts *options, path string, local func() (T, error)) (T, error) {
	if opts.url == "" {
		return local()
	}

	var res T

	url := fmt.Sprintf("%s/v1/%s", strings.TrimSuffix(opts.url, "/"), path)
	resp, err := http.Get(url)
	if err != nil {
		return res, fmt.Errorf("calling service: %w", err)
	}
	defer resp.Body.Close()

	if err := decodeResponse(resp, &res); err != nil {
		return res, err
	}

	return res, nil
}

// decodeResponse decodes a service response into val or converts the error
// document into an error.
func decodeResponse(resp *http.Response, val any) error {
	if resp.StatusCode != http.StatusOK {
		var er v1.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&er); err != nil || er.Error == "" {
			return fmt.Errorf("service responded %s", resp.Status)
		}

		msg := er.Error
		for field, reason := range er.Fields {
			msg += fmt.Sprintf(", %s: %s", field, reason)
		}
		return errors.New(msg)
	}

	if err := json.NewDecoder(resp.Body).Decode(val); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	return nil
}
