package usecase

// symbolPriorityMap pins well-known ticker symbols to their canonical coin
// id. The upstream catalog is full of copycat listings reusing major tickers;
// this table takes precedence over both catalog indexes so "btc" always means
// bitcoin.
var symbolPriorityMap = map[string]string{
	// Top market cap coins
	"btc":   "bitcoin",
	"eth":   "ethereum",
	"usdt":  "tether",
	"bnb":   "binancecoin",
	"sol":   "solana",
	"xrp":   "ripple",
	"usdc":  "usd-coin",
	"steth": "staked-ether",
	"ada":   "cardano",
	"avax":  "avalanche-2",
	"doge":  "dogecoin",
	"dot":   "polkadot",
	"trx":   "tron",
	"matic": "matic-network",
	"link":  "chainlink",
	"wbtc":  "wrapped-bitcoin",
	"ton":   "the-open-network",
	"dai":   "dai",
	"etc":   "ethereum-classic",
	"ltc":   "litecoin",
	"bch":   "bitcoin-cash",
	"icp":   "internet-computer",
	"atom":  "cosmos",
	"uni":   "uniswap",
	"hbar":  "hedera-hashgraph",
	"fil":   "filecoin",
	"ldo":   "lido-dao",
	"near":  "near",
	"inj":   "injective-protocol",
	"apt":   "aptos",
	"arb":   "arbitrum",
	"stx":   "blockstack",
	"op":    "optimism",
	"sui":   "sui",
	"mkr":   "maker",
	"aave":  "aave",
	"egld":  "multiversx-egld",
	"rpl":   "rocket-pool",
	"kcs":   "kucoin-shares",
	"fsn":   "fsn",
	"comp":  "compound-governance-token",
	"snx":   "synthetix-network-token",
	"crv":   "curve-dao-token",
	"grt":   "the-graph",
	"imx":   "immutable-x",
	"mana":  "decentraland",
	"chz":   "chiliz",
	"rndr":  "render-token",
	"kava":  "kava",
	"blur":  "blur",
	"cake":  "pancakeswap-token",
	"sand":  "the-sandbox",
	"mina":  "mina-protocol",
	"ftm":   "fantom",
	"neo":   "neo",
	"cfx":   "conflux-token",
	"pepe":  "pepe",
	"wld":   "worldcoin-org",
	"gmx":   "gmx",
	"kas":   "kaspa",
	"sei":   "sei-network",
	"pyth":  "pyth-network",

	// Stablecoins
	"busd": "binance-usd",
	"tusd": "true-usd",
	"usdd": "usdd",
	"usdp": "paxos-standard",
	"gusd": "gemini-dollar",
	"lusd": "liquity-usd",
	"cusd": "celo-dollar",
	"frax": "frax",
	"mai":  "mai",
	"susd": "nusd",

	// DeFi and DEX tokens
	"sushi": "sushi",
	"yfi":   "yearn-finance",
	"1inch": "1inch",
	"bal":   "balancer",
	"dydx":  "dydx",

	// Exchange tokens
	"mnt": "mantle",
	"bgb": "bitget-token",
	"okb": "okb",
	"gt":  "gatetoken",
	"ht":  "huobi-token",
	"ftx": "ftx-token",

	// Gaming and metaverse
	"axs":   "axie-infinity",
	"gala":  "gala",
	"enj":   "enjincoin",
	"theta": "theta-token",
	"magic": "magic",

	// Layer 2 and scaling
	"metis": "metis-token",
	"zks":   "zksync-io",

	// Privacy focused
	"xmr":  "monero",
	"zec":  "zcash",
	"scrt": "secret",

	// Infrastructure and oracles
	"api3":  "api3",
	"band":  "band-protocol",
	"glm":   "golem",
	"storj": "storj",
	"ar":    "arweave",

	// Misc notable projects
	"vet":   "vechain",
	"waves": "waves",
	"xem":   "nem",
	"bat":   "basic-attention-token",
	"one":   "harmony",
	"zen":   "horizen",
	"iota":  "iota",
	"dash":  "dash",
	"dcr":   "decred",
	"zil":   "zilliqa",
	"qtum":  "qtum",
	"sc":    "siacoin",
	"xdc":   "xdce-crowd-sale",
	"rose":  "oasis-network",
}
