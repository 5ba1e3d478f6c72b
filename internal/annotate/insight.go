package annotate

import (
	"strings"

	"cryptodigest/internal/domain"
)

// genericInsight is the last-resort sentence when everything else misses.
const genericInsight = "Market development worth tracking for portfolio impact."

// insightEntry pairs a topic keyword with its per-category sentences. The
// table is an ordered list because lookup is first declared match wins; a
// text mentioning both "bitcoin" and "etf" gets the bitcoin sentence.
type insightEntry struct {
	keyword   string
	sentences map[domain.Sentiment]string
}

var insightTable = []insightEntry{
	{
		keyword: "bitcoin",
		sentences: map[domain.Sentiment]string{
			domain.SentimentBullish:         "Bitcoin strength often signals broader crypto market confidence.",
			domain.SentimentBearish:         "Bitcoin weakness may indicate market-wide caution ahead.",
			domain.SentimentNeutral:         "Bitcoin developments warrant monitoring for portfolio positioning.",
			domain.SentimentSlightlyBullish: "Positive Bitcoin sentiment could support market momentum.",
			domain.SentimentSlightlyBearish: "Bitcoin headwinds may create short-term volatility.",
		},
	},
	{
		keyword: "btc",
		sentences: map[domain.Sentiment]string{
			domain.SentimentBullish:         "BTC momentum could drive institutional adoption forward.",
			domain.SentimentBearish:         "BTC concerns may pressure alternative cryptocurrency valuations.",
			domain.SentimentNeutral:         "BTC movements typically influence broader crypto sentiment.",
			domain.SentimentSlightlyBullish: "BTC gains often correlate with increased market activity.",
			domain.SentimentSlightlyBearish: "BTC weakness might signal consolidation phase ahead.",
		},
	},
	{
		keyword: "ethereum",
		sentences: map[domain.Sentiment]string{
			domain.SentimentBullish:         "Ethereum improvements typically boost DeFi ecosystem growth.",
			domain.SentimentBearish:         "Ethereum challenges could impact decentralized applications.",
			domain.SentimentNeutral:         "Ethereum developments affect the broader smart contract landscape.",
			domain.SentimentSlightlyBullish: "Ethereum progress supports long-term blockchain adoption.",
			domain.SentimentSlightlyBearish: "Ethereum concerns may slow DeFi innovation pace.",
		},
	},
	{
		keyword: "eth",
		sentences: map[domain.Sentiment]string{
			domain.SentimentBullish:         "ETH strength indicates healthy demand for DeFi services.",
			domain.SentimentBearish:         "ETH pressure might reduce staking and DeFi participation.",
			domain.SentimentNeutral:         "ETH movements reflect broader smart contract platform health.",
			domain.SentimentSlightlyBullish: "ETH developments could enhance network utility value.",
			domain.SentimentSlightlyBearish: "ETH headwinds may create DeFi liquidity concerns.",
		},
	},
	{
		keyword: "regulation",
		sentences: map[domain.Sentiment]string{
			domain.SentimentBullish:         "Clear regulations could accelerate institutional crypto adoption.",
			domain.SentimentBearish:         "Regulatory uncertainty may constrain market growth potential.",
			domain.SentimentNeutral:         "Regulatory developments shape long-term market structure.",
			domain.SentimentSlightlyBullish: "Regulatory progress supports mainstream acceptance trends.",
			domain.SentimentSlightlyBearish: "Regulatory concerns could limit short-term price momentum.",
		},
	},
	{
		keyword: "sec",
		sentences: map[domain.Sentiment]string{
			domain.SentimentBullish:         "Favorable SEC stance may unlock institutional investment flows.",
			domain.SentimentBearish:         "SEC scrutiny could create compliance costs and delays.",
			domain.SentimentNeutral:         "SEC decisions significantly influence US crypto market access.",
			domain.SentimentSlightlyBullish: "SEC clarity benefits long-term market development.",
			domain.SentimentSlightlyBearish: "SEC enforcement may increase market volatility short-term.",
		},
	},
	{
		keyword: "etf",
		sentences: map[domain.Sentiment]string{
			domain.SentimentBullish:         "ETF approvals typically increase retail and institutional access.",
			domain.SentimentBearish:         "ETF rejections may delay mainstream adoption timelines.",
			domain.SentimentNeutral:         "ETF developments affect traditional finance crypto integration.",
			domain.SentimentSlightlyBullish: "ETF progress supports price discovery and liquidity.",
			domain.SentimentSlightlyBearish: "ETF delays might reduce near-term institutional interest.",
		},
	},
	{
		keyword: "adoption",
		sentences: map[domain.Sentiment]string{
			domain.SentimentBullish:         "Growing adoption validates cryptocurrency utility and value.",
			domain.SentimentBearish:         "Adoption challenges highlight scalability and usability issues.",
			domain.SentimentNeutral:         "Adoption metrics indicate long-term market maturation.",
			domain.SentimentSlightlyBullish: "Adoption progress supports fundamental value growth.",
			domain.SentimentSlightlyBearish: "Adoption slowdown may indicate market saturation risks.",
		},
	},
	{
		keyword: "defi",
		sentences: map[domain.Sentiment]string{
			domain.SentimentBullish:         "DeFi innovations expand cryptocurrency practical applications.",
			domain.SentimentBearish:         "DeFi risks could undermine trust in decentralized finance.",
			domain.SentimentNeutral:         "DeFi developments influence blockchain utility perceptions.",
			domain.SentimentSlightlyBullish: "DeFi growth demonstrates blockchain technology value.",
			domain.SentimentSlightlyBearish: "DeFi concerns may reduce yield farming activity.",
		},
	},
	{
		keyword: "price",
		sentences: map[domain.Sentiment]string{
			domain.SentimentBullish:         "Price momentum could attract momentum-based investment strategies.",
			domain.SentimentBearish:         "Price pressure may trigger stop-loss selling cascades.",
			domain.SentimentNeutral:         "Price movements reflect underlying supply-demand dynamics.",
			domain.SentimentSlightlyBullish: "Price stability supports long-term value accumulation.",
			domain.SentimentSlightlyBearish: "Price volatility may discourage risk-averse investors.",
		},
	},
	{
		keyword: "market",
		sentences: map[domain.Sentiment]string{
			domain.SentimentBullish:         "Strong markets typically correlate with increased crypto interest.",
			domain.SentimentBearish:         "Market weakness often leads to risk-asset liquidation.",
			domain.SentimentNeutral:         "Market conditions significantly influence crypto performance.",
			domain.SentimentSlightlyBullish: "Market strength supports risk-on asset allocation.",
			domain.SentimentSlightlyBearish: "Market uncertainty encourages defensive positioning.",
		},
	},
}

// fallbackInsights cover texts that match no topic keyword.
var fallbackInsights = map[domain.Sentiment]string{
	domain.SentimentBullish:         "Strong fundamentals could support continued upward momentum.",
	domain.SentimentBearish:         "Market headwinds may create near-term volatility challenges.",
	domain.SentimentNeutral:         "Development bears monitoring for future market implications.",
	domain.SentimentSlightlyBullish: "Positive signals suggest gradual improvement potential.",
	domain.SentimentSlightlyBearish: "Cautious sentiment indicates consolidation may continue.",
}

// GenerateInsight returns a short explanatory sentence for the article based
// on the first topic keyword found in title+summary and the sentiment
// category. It never returns an empty string.
func GenerateInsight(title, summary string, category domain.Sentiment) string {
	haystack := strings.ToLower(title + " " + summary)

	for _, entry := range insightTable {
		if !strings.Contains(haystack, entry.keyword) {
			continue
		}
		if sentence, ok := entry.sentences[category]; ok {
			return sentence
		}
	}

	if sentence, ok := fallbackInsights[category]; ok {
		return sentence
	}

	return genericInsight
}
