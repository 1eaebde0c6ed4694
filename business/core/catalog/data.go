package catalog

// Presentation order of each table.
var (
	baseLayerOrder = []string{"bitcoin", "ethereum", "visa"}
	layer2Order    = []string{"lightning_network", "polygon", "optimism", "arbitrum", "zksync", "starknet"}
	shardingOrder  = []string{"ethereum_2", "zilliqa", "near", "elrond"}
)

var baseLayers = map[string]BaseLayer{
	"bitcoin": {
		Name:                  "Bitcoin",
		TPS:                   7,
		BlockTime:             Num(600),
		BlockSizeMB:           Num(1),
		Consensus:             "Proof of Work",
		FinalityTime:          "60 minutes (6 confirmations)",
		DecentralizationScore: 95,
		SecurityScore:         98,
	},
	"ethereum": {
		Name:                  "Ethereum 1.0",
		TPS:                   15,
		BlockTime:             Num(15),
		BlockSizeMB:           Text("variable"),
		Consensus:             "Proof of Stake",
		FinalityTime:          "~13 minutes",
		DecentralizationScore: 90,
		SecurityScore:         95,
	},
	"visa": {
		Name:                  "Visa (Traditional)",
		TPS:                   24000,
		BlockTime:             Text("N/A"),
		Consensus:             "Centralized",
		FinalityTime:          "instant",
		DecentralizationScore: 0,
		SecurityScore:         85,
	},
}

var layer2Solutions = map[string]Layer2{
	"lightning_network": {
		Name:                  "Lightning Network",
		Type:                  "Payment Channels",
		ParentChain:           "Bitcoin",
		TPS:                   1000000,
		AvgTransactionCostUSD: 0.0001,
		FinalityTime:          "instant",
		SecurityModel:         "Game-theoretic + timelocks",
		WithdrawalDelay:       "none",
		CostReduction:         "99%",
		Complexity:            "Medium",
		UseCases:              []string{"Micropayments", "Cross-border remittances"},
		SecurityScore:         80,
		DecentralizationScore: 85,
	},
	"polygon": {
		Name:                  "Polygon",
		Type:                  "Sidechain",
		ParentChain:           "Ethereum",
		TPS:                   7000,
		AvgTransactionCostUSD: 0.01,
		FinalityTime:          "2-3 seconds",
		SecurityModel:         "Own validator set",
		WithdrawalDelay:       "~30 minutes",
		CostReduction:         "99.9%",
		Complexity:            "Low",
		UseCases:              []string{"DeFi", "NFTs", "Gaming"},
		SecurityScore:         70,
		DecentralizationScore: 65,
	},
	"optimism": {
		Name:                  "Optimism",
		Type:                  "Optimistic Rollup",
		ParentChain:           "Ethereum",
		TPS:                   2000,
		AvgTransactionCostUSD: 0.10,
		FinalityTime:          "7 days (challenge period)",
		SecurityModel:         "Inherits L1 + fraud proofs",
		WithdrawalDelay:       "7 days",
		CostReduction:         "10-100x",
		Complexity:            "High",
		UseCases:              []string{"DeFi", "General purpose dApps"},
		SecurityScore:         90,
		DecentralizationScore: 85,
	},
	"arbitrum": {
		Name:                  "Arbitrum",
		Type:                  "Optimistic Rollup",
		ParentChain:           "Ethereum",
		TPS:                   4000,
		AvgTransactionCostUSD: 0.08,
		FinalityTime:          "7 days (challenge period)",
		SecurityModel:         "Inherits L1 + fraud proofs",
		WithdrawalDelay:       "7 days",
		CostReduction:         "10-100x",
		Complexity:            "High",
		UseCases:              []string{"DeFi", "NFT marketplaces"},
		SecurityScore:         90,
		DecentralizationScore: 80,
	},
	"zksync": {
		Name:                  "zkSync",
		Type:                  "ZK Rollup",
		ParentChain:           "Ethereum",
		TPS:                   2000,
		AvgTransactionCostUSD: 0.05,
		FinalityTime:          "instant",
		SecurityModel:         "Inherits L1 + ZK proofs (SNARKs)",
		WithdrawalDelay:       "minutes",
		CostReduction:         "10-100x",
		Complexity:            "Very High",
		UseCases:              []string{"Payments", "DeFi", "Privacy applications"},
		SecurityScore:         95,
		DecentralizationScore: 80,
	},
	"starknet": {
		Name:                  "Starknet",
		Type:                  "ZK Rollup",
		ParentChain:           "Ethereum",
		TPS:                   3000,
		AvgTransactionCostUSD: 0.04,
		FinalityTime:          "instant",
		SecurityModel:         "Inherits L1 + ZK proofs (STARKs)",
		WithdrawalDelay:       "minutes",
		CostReduction:         "10-100x",
		Complexity:            "Very High",
		UseCases:              []string{"Complex computations", "Gaming", "DeFi"},
		SecurityScore:         95,
		DecentralizationScore: 75,
	},
}

var shardingSolutions = map[string]Sharding{
	"ethereum_2": {
		Name:                  "Ethereum 2.0",
		Status:                "In Development",
		NumShards:             Num(64),
		TPSPerShard:           100,
		TotalTPS:              6400,
		Consensus:             "Proof of Stake",
		CrossShardLatency:     "Medium",
		SecurityModel:         "Random validator assignment",
		ImplementationStatus:  "Phased rollout",
		ThroughputImprovement: "19.5%",
		LatencyReduction:      "25%",
		Complexity:            "Very High",
		SecurityScore:         90,
		DecentralizationScore: 95,
	},
	"zilliqa": {
		Name:                  "Zilliqa",
		Status:                "Live",
		NumShards:             Num(8),
		TPSPerShard:           312,
		TotalTPS:              2500,
		Consensus:             "Practical Byzantine Fault Tolerance (pBFT)",
		CrossShardLatency:     "Low",
		SecurityModel:         "Random node assignment",
		ImplementationStatus:  "Production (Zilliqa 2.0)",
		Complexity:            "High",
		UseCases:              []string{"High-throughput transactions", "DeFi", "Gaming"},
		SecurityScore:         85,
		DecentralizationScore: 80,
	},
	"near": {
		Name:                  "NEAR Protocol",
		Status:                "Live",
		NumShards:             Text("Dynamic"),
		TPSPerShard:           100,
		TotalTPS:              100000,
		Consensus:             "Nightshade (PoS-based sharding)",
		CrossShardLatency:     "Low",
		SecurityModel:         "Dynamic resharding + validator rotation",
		ImplementationStatus:  "Production",
		Complexity:            "Very High",
		UseCases:              []string{"Web3 applications", "DeFi", "NFTs"},
		SecurityScore:         88,
		DecentralizationScore: 85,
	},
	"elrond": {
		Name:                  "Elrond (MultiversX)",
		Status:                "Live",
		NumShards:             Num(3),
		TPSPerShard:           5000,
		TotalTPS:              15000,
		Consensus:             "Secure Proof of Stake",
		CrossShardLatency:     "Very Low",
		SecurityModel:         "Adaptive state sharding",
		ImplementationStatus:  "Production",
		Complexity:            "High",
		UseCases:              []string{"Enterprise", "DeFi", "Metaverse"},
		SecurityScore:         90,
		DecentralizationScore: 82,
	},
}

var trilemma = map[string]TrilemmaProfile{
	"layer1_bitcoin":    {Scalability: 10, Security: 98, Decentralization: 95},
	"layer1_ethereum":   {Scalability: 20, Security: 95, Decentralization: 90},
	"layer2_optimistic": {Scalability: 85, Security: 90, Decentralization: 85},
	"layer2_zk":         {Scalability: 85, Security: 95, Decentralization: 80},
	"layer2_sidechain":  {Scalability: 90, Security: 70, Decentralization: 65},
	"sharding_ethereum": {Scalability: 88, Security: 90, Decentralization: 95},
	"sharding_zilliqa":  {Scalability: 80, Security: 85, Decentralization: 80},
	"hybrid_model":      {Scalability: 95, Security: 92, Decentralization: 88},
}

var comparison = map[string]Summary{
	"Layer 2 (Rollups)": {
		Throughput:        "Thousands TPS (2000-4000)",
		Performance:       "Low latency off-chain, batch settlement delay",
		Security:          "Inherits L1 security (rollups)",
		Complexity:        "Medium to High",
		CrossChain:        "Bridges required, withdrawal delays",
		CostEfficiency:    "Lower fees (10-100x reduction)",
		EcosystemAdoption: "Rapid, modular, many live projects",
		BestFor:           "Immediate scaling, DeFi, NFT use cases",
	},
	"Sharding": {
		Throughput:        "Linear TPS scaling (up to 100K+ TPS)",
		Performance:       "Fast per shard, cross-shard higher latency",
		Security:          "Distributed, randomized validators",
		Complexity:        "Very High (protocol overhaul)",
		CrossChain:        "Cross-shard protocols (slow, complex)",
		CostEfficiency:    "High after upgrade, complex operations",
		EcosystemAdoption: "Slow, incremental rollout",
		BestFor:           "Long-term ecosystem scaling",
	},
	"Hybrid (Layer 2 + Sharding)": {
		Throughput:        "Exponential scaling potential",
		Performance:       "Optimized for both intra and inter-shard",
		Security:          "Combined security models",
		Complexity:        "Very High",
		CrossChain:        "Advanced protocols needed",
		CostEfficiency:    "Optimal",
		EcosystemAdoption: "Emerging (Solana, Shardeum)",
		BestFor:           "Web3 global infrastructure",
	},
}

var securityVectors = map[string]map[string]Threat{
	"layer1": {
		"51% Attack":         {Likelihood: "Very Low", Impact: "Critical"},
		"Double Spend":       {Likelihood: "Very Low", Impact: "High"},
		"Network Congestion": {Likelihood: "High", Impact: "Medium"},
	},
	"layer2_optimistic": {
		"Sequencer Centralization": {Likelihood: "Medium", Impact: "Medium"},
		"Fraud Proof Failure":      {Likelihood: "Low", Impact: "High"},
		"Bridge Exploits":          {Likelihood: "Medium", Impact: "Critical"},
		"Smart Contract Bugs":      {Likelihood: "Medium", Impact: "High"},
	},
	"layer2_zk": {
		"Proof Generation Attack":  {Likelihood: "Very Low", Impact: "Critical"},
		"Trusted Setup Compromise": {Likelihood: "Very Low", Impact: "Critical"},
		"Bridge Exploits":          {Likelihood: "Medium", Impact: "Critical"},
		"Complexity Bugs":          {Likelihood: "Medium", Impact: "High"},
	},
	"sharding": {
		"Single Shard Takeover":          {Likelihood: "Low", Impact: "High"},
		"Sybil Attack":                   {Likelihood: "Low", Impact: "Critical"},
		"Cross-Shard Replay":             {Likelihood: "Low", Impact: "High"},
		"Network Partitioning":           {Likelihood: "Low", Impact: "Critical"},
		"Validator Coordination Failure": {Likelihood: "Medium", Impact: "Medium"},
	},
}

var chartColors = map[string]string{
	"layer1":     "#3b82f6",
	"layer2":     "#8b5cf6",
	"sharding":   "#10b981",
	"hybrid":     "#f59e0b",
	"comparison": "#ef4444",
}
