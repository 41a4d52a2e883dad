package session

import (
	"net/url"
	"strings"

	"github.com/amterp/shades/internal/fragment"
	"github.com/amterp/shades/internal/model"
)

// BuildOpenURL resolves base against origin, adds history=replace unless a
// history mode is already given (and forceReplace is set), and attaches frag
// as the fragment when non-empty. Unparseable input falls back to plain
// string concatenation.
func BuildOpenURL(base, origin, frag string, forceReplace bool) string {
	u, err := resolve(base, origin)
	if err != nil {
		return naiveOpenURL(base, frag, forceReplace)
	}

	if forceReplace {
		q := u.Query()
		existing := q.Get(ParamHistory)
		if existing == "" {
			existing = q.Get(ParamHist)
		}
		if existing == "" {
			if u.RawQuery == "" {
				u.RawQuery = ParamHistory + "=" + string(HistoryReplace)
			} else {
				u.RawQuery += "&" + ParamHistory + "=" + string(HistoryReplace)
			}
		}
	}

	if frag != "" {
		u.Fragment = frag
		u.RawFragment = ""
	}
	return u.String()
}

func resolve(base, origin string) (*url.URL, error) {
	ref, err := url.Parse(base)
	if err != nil {
		return nil, err
	}
	if ref.IsAbs() || origin == "" {
		return ref, nil
	}
	o, err := url.Parse(origin)
	if err != nil {
		return nil, err
	}
	return o.ResolveReference(ref), nil
}

func naiveOpenURL(base, frag string, forceReplace bool) string {
	var b strings.Builder
	b.WriteString(base)
	if forceReplace {
		if strings.Contains(base, "?") {
			b.WriteString("&")
		} else {
			b.WriteString("?")
		}
		b.WriteString(ParamHistory + "=" + string(HistoryReplace))
	}
	if frag != "" {
		b.WriteString("#" + frag)
	}
	return b.String()
}

func encodeState(state model.PaletteState) string {
	return fragment.Encode(state)
}

// BuildEmbedURL returns the src for an iframe: base flagged as embedded,
// tagged with ctx when non-empty, and carrying frag. Existing query
// parameters are kept; embed and ctx are overwritten.
func BuildEmbedURL(base, ctx, frag string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", err
	}

	q := u.Query()
	q.Set(ParamEmbed, "1")
	if ctx != "" {
		q.Set(contextParams[0], ctx)
	}
	u.RawQuery = q.Encode()

	if frag != "" {
		u.Fragment = frag
		u.RawFragment = ""
	}
	return u.String(), nil
}
