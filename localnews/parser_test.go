package localnews

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"
)

const testFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"
     xmlns:content="http://purl.org/rss/1.0/modules/content/"
     xmlns:media="http://search.yahoo.com/mrss/">
  <channel>
    <title>La Prensa Austral</title>
    <link>https://laprensaaustral.cl</link>
    <description>Noticias regionales</description>
    <item>
      <title>Nueva Radio Comunitaria inicia transmisiones</title>
      <link>https://laprensaaustral.cl/nota/radio-comunitaria</link>
      <description><![CDATA[<p>La <b>nueva emisora</b> comenzó sus transmisiones de prueba en la región con una parrilla dedicada a la música local, entrevistas a vecinos y un noticiero matinal que busca informar a toda la comunidad de la zona austral.</p>]]></description>
      <pubDate>Wed, 15 Jan 2025 06:00:00 +0000</pubDate>
      <enclosure url="https://laprensaaustral.cl/img/portada.jpg" length="12345" type="image/jpeg"/>
      <content:encoded><![CDATA[<p>Texto completo</p><img src="https://laprensaaustral.cl/img/inline.jpg" alt=""/>]]></content:encoded>
    </item>
    <item>
      <title></title>
      <description>Breve.</description>
      <pubDate>no es una fecha</pubDate>
    </item>
    <item>
      <title>Nota con media:content</title>
      <link>https://laprensaaustral.cl/nota/media</link>
      <description>Sin imagen en la descripción.</description>
      <pubDate>Tue, 14 Jan 2025 12:30:00 +0000</pubDate>
      <media:content url="https://laprensaaustral.cl/img/media.jpg" medium="image"/>
    </item>
    <item>
      <title>Nota con imagen embebida</title>
      <link>https://laprensaaustral.cl/nota/embebida</link>
      <description><![CDATA[Texto con <img src='https://laprensaaustral.cl/img/desc.png'> adentro.]]></description>
      <pubDate>Mon, 13 Jan 2025 09:00:00 +0000</pubDate>
    </item>
  </channel>
</rss>`

func TestParseFeed(t *testing.T) {
	articles := ParseFeed(testFeed, "La Prensa Austral")
	if len(articles) != 4 {
		t.Fatalf("expected 4 articles, got %d", len(articles))
	}

	first := articles[0]
	if first.Title != "Nueva Radio Comunitaria inicia transmisiones" {
		t.Errorf("unexpected title: %q", first.Title)
	}
	if first.Source != "La Prensa Austral" {
		t.Errorf("unexpected source: %q", first.Source)
	}

	want := time.Date(2025, 1, 15, 6, 0, 0, 0, time.UTC)
	if !first.RawDate.Equal(want) {
		t.Errorf("RawDate = %v, want %v", first.RawDate, want)
	}
	if first.PubDate != "15-01-2025 06:00" {
		t.Errorf("PubDate = %q, want %q", first.PubDate, "15-01-2025 06:00")
	}
}

func TestParseFeedDescription(t *testing.T) {
	articles := ParseFeed(testFeed, "La Prensa Austral")

	long := articles[0].Description
	if strings.ContainsAny(long, "<>") {
		t.Errorf("description still contains markup: %q", long)
	}
	if !strings.HasSuffix(long, "...") {
		t.Errorf("description missing ellipsis: %q", long)
	}
	if got := utf8.RuneCountInString(long); got != descriptionLimit+len(ellipsis) {
		t.Errorf("long description length = %d runes, want %d", got, descriptionLimit+len(ellipsis))
	}

	// Short descriptions still get the ellipsis marker.
	if got := articles[1].Description; got != "Breve...." {
		t.Errorf("short description = %q, want %q", got, "Breve....")
	}
}

func TestParseFeedFallbacks(t *testing.T) {
	articles := ParseFeed(testFeed, "La Prensa Austral")
	item := articles[1]

	if item.Title != TitleFallback {
		t.Errorf("title fallback = %q, want %q", item.Title, TitleFallback)
	}
	if item.Link != LinkFallback {
		t.Errorf("link fallback = %q, want %q", item.Link, LinkFallback)
	}
	if item.PubDate != DateFallback {
		t.Errorf("date fallback = %q, want %q", item.PubDate, DateFallback)
	}
	if !item.RawDate.IsZero() {
		t.Errorf("unparseable date should keep the zero RawDate, got %v", item.RawDate)
	}
}

func TestParseFeedImagePrecedence(t *testing.T) {
	articles := ParseFeed(testFeed, "La Prensa Austral")

	cases := []struct {
		name string
		got  string
		want string
	}{
		{"enclosure wins over encoded content", articles[0].Image, "https://laprensaaustral.cl/img/portada.jpg"},
		{"no image candidates", articles[1].Image, ""},
		{"media:content", articles[2].Image, "https://laprensaaustral.cl/img/media.jpg"},
		{"img inside description", articles[3].Image, "https://laprensaaustral.cl/img/desc.png"},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Errorf("%s: image = %q, want %q", c.name, c.got, c.want)
		}
	}
}

func TestParseFeedMalformedXML(t *testing.T) {
	articles := ParseFeed("<html><body>503 Service Unavailable", "El Pingüino")
	if len(articles) != 0 {
		t.Fatalf("malformed document should yield no articles, got %d", len(articles))
	}
}
