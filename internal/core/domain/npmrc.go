package domain

// NpmrcContent is written verbatim to every .npmrc location.
const NpmrcContent = "legacy-peer-deps=true\n" +
	"auto-install-peers=true\n" +
	"fund=false\n" +
	"audit=false"
