// Package render turns annotated articles into user-facing Markdown messages.
// The digest pipeline does not know about any of this; an empty article set
// renders as the "no news" message rather than an error.
package render

import (
	"fmt"
	"strings"
	"time"

	"cryptodigest/internal/domain"
	"cryptodigest/internal/textutil"
)

const (
	// MaxMessageLength leaves headroom under Telegram's 4096 char limit.
	MaxMessageLength = 4000

	maxTitleLength   = 80
	maxSummaryLength = 200
	maxInsightLength = 150
)

// Formatter renders digests and the bot's static messages.
type Formatter struct {
	digestCount int
	now         func() time.Time
}

// NewFormatter caps how many articles a digest shows.
func NewFormatter(digestCount int) *Formatter {
	if digestCount <= 0 {
		digestCount = 10
	}
	return &Formatter{digestCount: digestCount, now: time.Now}
}

// DailyDigest formats the ranked, annotated articles into the digest message.
func (f *Formatter) DailyDigest(articles []domain.AnnotatedArticle) string {
	if len(articles) == 0 {
		return f.NoNews()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\U0001f4c8 **CRYPTO DIGEST**\n*%s*\n\n", f.now().UTC().Format("Monday, January 2, 2006"))

	if len(articles) > f.digestCount {
		articles = articles[:f.digestCount]
	}

	for i, article := range articles {
		section := f.articleSection(article, i+1, false)

		if b.Len()+len(section) > MaxMessageLength {
			// Nothing emitted yet: show at least one article, compacted.
			if i == 0 {
				b.WriteString(f.articleSection(article, i+1, true))
			}
			break
		}

		b.WriteString(section)
	}

	footer := "\n\U0001f4a1 **Commands:** /hot for trending | /settings for preferences | /help for more"
	if b.Len()+len(footer) <= MaxMessageLength {
		b.WriteString(footer)
	}

	return b.String()
}

func (f *Formatter) articleSection(article domain.AnnotatedArticle, number int, compact bool) string {
	maxTitle, maxSummary, maxInsight := maxTitleLength, maxSummaryLength, maxInsightLength
	if compact {
		maxTitle, maxSummary, maxInsight = 60, 120, 80
	}

	title := textutil.Truncate(article.Article.Title, maxTitle)
	summary := textutil.Truncate(article.Summary, maxSummary)
	insight := textutil.Truncate(article.Insight, maxInsight)

	return fmt.Sprintf(
		"**%d. %s %s** | %s\n*%s*\n**\U0001f4a1 Why it matters:** %s\n\U0001f4f0 *Source: %s*\n\n",
		number, article.Emoji, article.Sentiment.Display(), title,
		summary, insight, article.Article.SourceName,
	)
}

// Trending groups articles by sentiment direction.
func (f *Formatter) Trending(articles []domain.AnnotatedArticle) string {
	if len(articles) == 0 {
		return "\U0001f4ca **TRENDING NEWS**\n\nNo trending stories available right now!"
	}

	var bullish, bearish, neutral []domain.AnnotatedArticle
	for _, article := range articles {
		switch article.Sentiment {
		case domain.SentimentBullish, domain.SentimentSlightlyBullish:
			bullish = append(bullish, article)
		case domain.SentimentBearish, domain.SentimentSlightlyBearish:
			bearish = append(bearish, article)
		default:
			neutral = append(neutral, article)
		}
	}

	var b strings.Builder
	b.WriteString("\U0001f4ca **TRENDING BY SENTIMENT**\n\n")
	writeTrendGroup(&b, "\U0001f680 **BULLISH TRENDS**", bullish, 4)
	writeTrendGroup(&b, "\U0001f43b **BEARISH TRENDS**", bearish, 4)
	writeTrendGroup(&b, "⚠️ **NEUTRAL DEVELOPMENTS**", neutral, 3)
	b.WriteString("\n\U0001f4a1 Use /today for detailed analysis!")

	return b.String()
}

func writeTrendGroup(b *strings.Builder, heading string, articles []domain.AnnotatedArticle, limit int) {
	if len(articles) == 0 {
		return
	}
	if len(articles) > limit {
		articles = articles[:limit]
	}

	b.WriteString(heading + "\n")
	for _, article := range articles {
		fmt.Fprintf(b, "• %s *(%s)*\n",
			textutil.Truncate(article.Article.Title, 65), article.Article.SourceName)
	}
	b.WriteString("\n")
}

// NoNews is the first-class empty-result message.
func (f *Formatter) NoNews() string {
	return "\U0001f4c8 **CRYPTO DIGEST**\n\n" +
		"\U0001f914 No news articles available right now.\n\n" +
		"This could mean:\n" +
		"• News sources are temporarily unavailable\n" +
		"• Very quiet news day in crypto markets\n" +
		"• Technical issue fetching latest updates\n\n" +
		"\U0001f4a1 **Try again in a few minutes or use:**\n" +
		"/hot - Check for trending stories\n" +
		"/settings - Verify your preferences"
}

// Welcome greets new users.
func (f *Formatter) Welcome() string {
	return "\U0001f44b **Welcome to Crypto Digest!**\n\n" +
		"\U0001f916 I'm your crypto news assistant. Here's what I do:\n\n" +
		"**\U0001f4ca Core Features:**\n" +
		"• Daily top 10 crypto news summaries\n" +
		"• \U0001f680\U0001f43b Sentiment analysis per story\n" +
		"• \U0001f4a1 Investment insights for each story\n" +
		"• \U0001f558 Automated delivery at 9 AM UTC\n" +
		"• \U0001f4f0 Multiple trusted news sources\n\n" +
		"**⚡ Quick Commands:**\n" +
		"/today - Get today's digest (instant)\n" +
		"/hot - Trending news by sentiment\n" +
		"/subscribe - Enable daily auto-delivery\n" +
		"/settings - Manage your preferences\n" +
		"/help - Full command reference\n\n" +
		"Try /today to see your first crypto digest!"
}

// Help is the full command reference.
func (f *Formatter) Help() string {
	return "\U0001f916 **CRYPTO DIGEST - HELP**\n\n" +
		"**\U0001f4ca News Commands:**\n" +
		"/today - Get today's top crypto digest\n" +
		"/hot - Trending news organized by sentiment\n\n" +
		"**⚙️ Settings & Subscriptions:**\n" +
		"/subscribe - Enable daily digests\n" +
		"/unsubscribe - Disable daily digests\n" +
		"/settings - View current preferences\n\n" +
		"**\U0001f3af How It Works:**\n" +
		"• I monitor trusted crypto news sources\n" +
		"• Sentiment analysis: \U0001f680 Bullish, \U0001f43b Bearish\n" +
		"• Each story includes investment insights\n" +
		"• Duplicate stories are removed across sources\n" +
		"• Content ranked by relevance & importance\n\n" +
		"**\U0001f4f0 News Sources:**\n" +
		"CoinDesk • CoinTelegraph • Decrypt • CoinMarketCap • CryptoNews"
}

// Settings shows the current subscription state.
func (f *Formatter) Settings(subscribed bool) string {
	status := "❌ Disabled"
	if subscribed {
		status = "✅ Enabled"
	}

	return "⚙️ **YOUR SETTINGS**\n\n" +
		"**\U0001f4c5 Daily Digest:**\n" +
		fmt.Sprintf("Status: %s\n", status) +
		"Time: 9:00 AM UTC daily\n" +
		"Content: Top 10 crypto stories + insights\n\n" +
		"**\U0001f527 Available Actions:**\n" +
		"/subscribe - Enable daily digests\n" +
		"/unsubscribe - Disable daily digests\n" +
		"/today - Get instant digest\n" +
		"/hot - View trending sentiment"
}

// Error is the generic user-facing failure message.
func (f *Formatter) Error() string {
	return "❌ **Oops! Something went wrong**\n\n" +
		"I encountered an error while preparing your digest.\n\n" +
		"**Please try:**\n" +
		"• Wait a moment and try again\n" +
		"• Use /hot for trending news"
}

// SubscribeSuccess confirms a subscription.
func (f *Formatter) SubscribeSuccess() string {
	return "✅ **Successfully Subscribed!**\n\n" +
		"You'll now receive daily crypto digests at **9:00 AM UTC**.\n\n" +
		"**Want your digest now?** Use /today\n\n" +
		"*You can unsubscribe anytime with /unsubscribe*"
}

// UnsubscribeSuccess confirms an unsubscription.
func (f *Formatter) UnsubscribeSuccess() string {
	return "❌ **Successfully Unsubscribed**\n\n" +
		"You won't receive daily digests anymore.\n\n" +
		"**You can still:**\n" +
		"• Get instant news with /today\n" +
		"• Check trending sentiment with /hot\n" +
		"• Re-subscribe anytime with /subscribe"
}
