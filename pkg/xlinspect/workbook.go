package xlinspect

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/ukaji3/xlinspect-go/pkg/xlinspect/models"
	"github.com/ukaji3/xlinspect-go/pkg/xlinspect/parser"
	"github.com/xuri/excelize/v2"
)

// Workbook is an open, read-only workbook. It is not safe for concurrent use.
type Workbook struct {
	path   string
	opts   Options
	logger *slog.Logger
	loader parser.SheetLoader
	sheets []string
	cache  map[string]*models.Table
}

// Open opens the workbook at path.
func Open(path string, opts Options) (*Workbook, error) {
	opts = opts.withDefaults()

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrFileAccess, path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrFileAccess, path)
	}

	container, err := parser.SniffContainer(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFileAccess, path, err)
	}
	if err := checkContainer(container, opts); err != nil {
		return nil, fmt.Errorf("%w: %s", err, path)
	}

	loader, err := openLoader(path, opts)
	if err != nil {
		if errors.Is(err, excelize.ErrWorkbookPassword) {
			return nil, fmt.Errorf("%w: %s: %w", ErrPasswordRequired, path, err)
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidFormat, path, err)
	}

	wb := &Workbook{
		path:   path,
		opts:   opts,
		logger: opts.Logger,
		loader: loader,
		sheets: loader.SheetNames(),
	}
	if opts.CacheTables {
		wb.cache = make(map[string]*models.Table)
	}

	wb.logger.Debug("workbook opened",
		"path", path,
		"engine", opts.Engine,
		"container", container.String(),
		"sheets", len(wb.sheets),
	)
	return wb, nil
}

func checkContainer(c parser.Container, opts Options) error {
	switch c {
	case parser.ContainerZip:
		return nil
	case parser.ContainerEncrypted:
		if opts.Password == "" {
			return ErrPasswordRequired
		}
		if opts.Engine == EngineStream {
			return fmt.Errorf("%w: the stream engine cannot read encrypted workbooks", ErrInvalidFormat)
		}
		return nil
	case parser.ContainerLegacyXLS:
		return fmt.Errorf("%w: legacy BIFF (.xls) workbooks are not supported", ErrInvalidFormat)
	}
	return ErrInvalidFormat
}

func openLoader(path string, opts Options) (parser.SheetLoader, error) {
	switch opts.Engine {
	case EngineExcelize:
		return parser.OpenExcelize(path, opts.Password)
	case EngineStream:
		return parser.OpenStream(path)
	}
	return nil, fmt.Errorf("unknown engine %q", opts.Engine)
}

// Name returns the workbook file name (no path).
func (w *Workbook) Name() string {
	return filepath.Base(w.path)
}

// SheetNames returns the sheet names in workbook order.
func (w *Workbook) SheetNames() []string {
	return slices.Clone(w.sheets)
}

// Summary returns the workbook name and sheet list.
func (w *Workbook) Summary() models.WorkbookSummary {
	return models.WorkbookSummary{
		BookName: w.Name(),
		Sheets:   w.SheetNames(),
	}
}

// LoadSheet reads the named sheet into a Table.
func (w *Workbook) LoadSheet(name string) (*models.Table, error) {
	if !slices.Contains(w.sheets, name) {
		return nil, NewSheetError(name, "load", ErrSheetNotFound)
	}
	if t, ok := w.cache[name]; ok {
		w.logger.Debug("table cache hit", "sheet", name)
		return t, nil
	}

	start := time.Now()
	rows, err := w.loader.LoadRows(name)
	if err != nil {
		return nil, NewSheetError(name, "load", err)
	}
	t := parser.BuildTable(name, rows)

	w.logger.Debug("sheet loaded",
		"sheet", name,
		"rows", t.RowCount(),
		"columns", t.ColumnCount(),
		"header_row", t.HeaderRow,
		"elapsed", time.Since(start),
	)

	if w.cache != nil {
		w.cache[name] = t
	}
	return t, nil
}

// Close releases the workbook file.
func (w *Workbook) Close() error {
	return w.loader.Close()
}
