package page

var (
	receiveCardHeader     = accessibilityID("receiveCardHeader", "receiveCardScreen")
	qrCode                = accessibilityID("qrCode", "qrCode")
	receiveCardBackButton = accessibilityID("receiveCardBackButton", "arrowLeft")
)

// ReceiveCardPage shows the QR code another wallet scans to share a card.
type ReceiveCardPage struct {
	base *BasePage
}

// NewReceiveCardPage returns the receive card page object.
func NewReceiveCardPage(base *BasePage) *ReceiveCardPage {
	return &ReceiveCardPage{base: base}
}

// Screen implements Page.
func (p *ReceiveCardPage) Screen() Screen { return ReceiveCard }

// IsLoaded implements Page.
func (p *ReceiveCardPage) IsLoaded() (bool, error) {
	return p.base.IsElementDisplayed(receiveCardHeader)
}

// IsQRCodeDisplayed reports whether the QR code is visible.
func (p *ReceiveCardPage) IsQRCodeDisplayed() (bool, error) {
	return p.base.IsElementDisplayed(qrCode)
}

// ClickOnBackButton returns to settings.
func (p *ReceiveCardPage) ClickOnBackButton() (*SettingsPage, error) {
	if err := p.base.ClickOnElement(receiveCardBackButton); err != nil {
		return nil, err
	}
	return NewSettingsPage(p.base), nil
}
