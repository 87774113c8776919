package agent

// resolvePrompt asks for the ticker of a company. It takes the user input.
const resolvePrompt = `You are a financial assistant that finds stock tickers.
Find the stock ticker of the company the user is talking about: %q

Rules:
- US listed companies: the bare ticker, e.g. AAPL, TSLA, NVDA.
- Korean listed companies: the 6 digit code followed by .KS for KOSPI or .KQ for KOSDAQ, e.g. 005930.KS.
- If you cannot identify a listed company, answer UNKNOWN.

Answer with a single line in the format TICKER|CompanyName and nothing else.

Examples:
테슬라 -> TSLA|Tesla
애플 -> AAPL|Apple
엔비디아 -> NVDA|NVIDIA
삼성전자 -> 005930.KS|Samsung Electronics
에코프로 -> 086520.KQ|EcoPro
Microsoft -> MSFT|Microsoft
`

// insightPrompt asks for an investment summary. It takes the ticker, the
// price, the news digest and the output language.
const insightPrompt = `Analyze the following stock data for %s as a professional financial analyst.
Current Price: %s
Recent News Headlines: %s

Provide a concise 3-sentence investment summary and sentiment analysis (Positive/Neutral/Negative). Focus on potential risks and opportunities based on the news provided. Respond in %s.`
