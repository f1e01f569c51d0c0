package stylesheet

import (
	"errors"
	"fmt"

	"contrast-audit/internal/application/port/output"
	"contrast-audit/internal/domain/entity"
)

// ParseAll parses every file on its own. A file that fails to parse is logged and skipped;
// the others are returned in their original order.
func ParseAll(parser output.StylesheetParser, files []entity.StylesheetFile, log output.LoggerPort) []entity.Stylesheet {
	sheets := make([]entity.Stylesheet, 0, len(files))
	for _, file := range files {
		sheet, err := parseOne(parser, file)
		if err != nil {
			log.Warn("Skipping stylesheet", "source", file.Source, "error", err)
			continue
		}
		sheets = append(sheets, *sheet)
	}
	return sheets
}

func parseOne(parser output.StylesheetParser, file entity.StylesheetFile) (sheet *entity.Stylesheet, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %s: %v", entity.ErrStylesheetParse, file.Source, r)
		}
	}()

	sheet, err = parser.Parse(file)
	if err != nil {
		if !errors.Is(err, entity.ErrStylesheetParse) {
			err = fmt.Errorf("%w: %s: %v", entity.ErrStylesheetParse, file.Source, err)
		}
		return nil, err
	}
	if sheet == nil {
		return nil, fmt.Errorf("%w: %s: empty result", entity.ErrStylesheetParse, file.Source)
	}
	return sheet, nil
}
