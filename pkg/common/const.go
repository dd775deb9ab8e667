package common

// Page containers. CONTAINER_LOADING is the id of the indicator shown
// while the top stocks section loads; it holds no content.
const (
	CONTAINER_LOADING     = "loading"
	CONTAINER_TOP_STOCKS  = "topStocks"
	CONTAINER_SHORT       = "short"
	CONTAINER_MID         = "mid"
	CONTAINER_LONG        = "long"
	CONTAINER_SEARCH      = "searchResults"
	CONTAINER_STOCK_SCORE = "stockScoreResults"
	CONTAINER_METHODOLOGY = "methodologyContent"
)

func GetContainerList() []string {
	return []string{
		CONTAINER_TOP_STOCKS,
		CONTAINER_SHORT,
		CONTAINER_MID,
		CONTAINER_LONG,
		CONTAINER_SEARCH,
		CONTAINER_STOCK_SCORE,
		CONTAINER_METHODOLOGY,
	}
}

// Collapsible consensus panels.
const (
	PANEL_CONSENSUS_DETAILS = "consensus-details"
	PANEL_FINGPT_DETAILS    = "fingpt-details"
	PANEL_FINBERT_DETAILS   = "finbert-details"
	PANEL_FINLLM_DETAILS    = "finllm-details"
	PANEL_FINMA_DETAILS     = "finma-details"
)

// GetDefaultPanels returns every panel with its initial visibility.
func GetDefaultPanels() map[string]bool {
	return map[string]bool{
		PANEL_CONSENSUS_DETAILS: true,
		PANEL_FINGPT_DETAILS:    false,
		PANEL_FINBERT_DETAILS:   false,
		PANEL_FINLLM_DETAILS:    false,
		PANEL_FINMA_DETAILS:     false,
	}
}

const (
	GLYPH_PANEL_OPEN   = "▼"
	GLYPH_PANEL_CLOSED = "▶"
)

const (
	KEY_SESSION_PAGE = "session_page:%s"
)
