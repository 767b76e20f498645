/*
llmtools exposes information-retrieval capabilities (image search, web search,
video search, encyclopedia lookup, weather forecasting, financial quotes) as
tools which can be called by a large-language-model assistant. Each tool accepts
structured JSON arguments, calls a third-party HTTP API through a per-provider
client package, and returns a normalized response the LLM can relay to the user.

Search-style tools share a short-TTL in-process result cache (pkg/cache) and a
common orchestration core (pkg/searchtool). Tools are assembled from a resolved
configuration by pkg/registry.
*/
package llmtools
