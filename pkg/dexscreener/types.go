package dexscreener

// TokenProfile is one entry from the profile or boost feeds. Addresses are not
// unique across feeds; the same token may be promoted in several of them.
type TokenProfile struct {
	ChainID      string `json:"chainId"`
	TokenAddress string `json:"tokenAddress"`
	Icon         string `json:"icon"`
	Header       string `json:"header"`
	Description  string `json:"description"`
}

// Pair is one trading pair from the token lookup endpoint. A token with
// several pools returns one Pair per pool.
type Pair struct {
	ChainID   string     `json:"chainId"`
	URL       string     `json:"url"`
	BaseToken BaseToken  `json:"baseToken"`
	Liquidity *Liquidity `json:"liquidity"`
	Info      *PairInfo  `json:"info"`
}

// BaseToken identifies the base side of a pair.
type BaseToken struct {
	Address string `json:"address"`
	Name    string `json:"name"`
	Symbol  string `json:"symbol"`
}

// Liquidity is the pooled market depth of a pair.
type Liquidity struct {
	USD float64 `json:"usd"`
}

// PairInfo carries the display assets attached to a pair.
type PairInfo struct {
	ImageURL string `json:"imageUrl"`
	Header   string `json:"header"`
}
