package renderer

import (
	"context"
	"net/url"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/pkg/errors"
)

const renderTimeout = 60 * time.Second

// mm em polegadas, unidade do protocolo de impressão do Chrome.
const marginInches = 10.0 / 25.4

// ChromePDFRenderer renderiza HTML em PDF usando um Chrome headless, para
// que o arquivo tenha o mesmo visual da impressão do navegador.
type ChromePDFRenderer struct {
	execOpts []chromedp.ExecAllocatorOption
}

func NewChromePDFRenderer() *ChromePDFRenderer {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox,
		chromedp.Flag("disable-setuid-sandbox", true),
	)
	return &ChromePDFRenderer{execOpts: opts}
}

func (r *ChromePDFRenderer) RenderPDF(ctx context.Context, html string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, renderTimeout)
	defer cancel()

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, r.execOpts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	dataURL := "data:text/html;charset=utf-8," + url.PathEscape(html)

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(dataURL),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithMarginTop(marginInches).
				WithMarginBottom(marginInches).
				WithMarginLeft(marginInches).
				WithMarginRight(marginInches).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, errors.Wrap(err, "renderizando PDF no Chrome headless")
	}

	return pdf, nil
}
