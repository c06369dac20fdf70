package render

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"themedstyler/config"
	"themedstyler/native"
)

var errMissingTag = errors.New("no element tag has been specified")

// Native prints property map of a single element for native views as JSON.
func Native(ctx context.Context, cmd *cli.Command) error {
	tag := cmd.String("tag")
	if len(tag) == 0 {
		return errMissingTag
	}
	ss, err := prepare(ctx, cmd, "native")
	if err != nil {
		return err
	}

	data, err := ss.nativeStyles(tag, cmd.StringSlice("class"))
	if err != nil {
		return err
	}
	return ss.output(ss.destination(cmd), config.CleanFileName(tag)+".json", data)
}

// nativeStyles returns indented JSON of element properties.
func (ss *session) nativeStyles(tag string, classes []string) ([]byte, error) {
	props := native.NewProjector(ss.log).StylesFor(ss.s, tag, classes)
	data, err := json.MarshalIndent(props, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("unable to encode styles: %w", err)
	}
	ss.log.Debug("Native styles rendered",
		zap.String("tag", tag),
		zap.Strings("classes", classes),
		zap.Int("properties", props.Len()))
	return append(data, '\n'), nil
}
