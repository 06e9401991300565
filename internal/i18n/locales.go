package i18n

var locales = map[string]map[string]string{
	"en-us": {
		"app_title":         "Website Audit",
		"start_analysis":    "Starting analysis of {url}",
		"analysis_complete": "Analysis complete",

		"connection_error_title":       "Connection Error",
		"critical_error_accessing_url": "Critical error accessing the URL: {error}",
		"analysis_canceled":            "Analysis canceled",

		"panel_general_info":     "General Information & Performance",
		"final_url_analyzed":     "Final URL analyzed:",
		"ip_address":             "IP address:",
		"could_not_resolve_ip":   "could not resolve",
		"status_code":            "Status code:",
		"network_latency":        "Network latency (ping):",
		"not_measured_icmp":      "not measured (ICMP unavailable)",
		"total_load_time":        "Total load time:",
		"ttfb":                   "Time to first byte (TTFB):",
		"seconds":                "s",
		"slow_warning_3s":        " (slow, above 3s)",
		"slow_warning_ttfb":      " (slow, above 0.8s)",
		"page_size":              "Page size:",
		"server":                 "Server:",
		"not_provided":           "not provided",
		"compression":            "Compression:",
		"none":                   "none",

		"panel_tech": "Detected Technologies",

		"panel_onpage_security": "On-Page Security",
		"using_https":           "Using HTTPS:",
		"https_yes":             "yes",
		"https_no":              "no",
		"security_headers":      "Security headers:",
		"headers_found":         "    {count} of {total} recommended headers found",

		"panel_domain_ssl":     "Domain & Certificate",
		"whois_error":          "WHOIS lookup failed",
		"domain_creation_date": "Domain created:",
		"registrar":            "Registrar:",
		"ssl_error":            "Certificate check failed",
		"ssl_validity":         "Certificate validity:",
		"ssl_expiry_warning":   " (expires in {days} days)",
		"ssl_expired":          " (expired)",

		"panel_seo_content":  "SEO & Content",
		"title":              "Title:",
		"not_found":          "not found",
		"declared_language":  "Declared language:",
		"lang_not_declared":  "not declared",
		"meta_tags":          "Meta Tags",
		"meta_desc_missing":  "    - description: missing",
		"meta_viewport_missing": "    - viewport: missing",
		"headings_structure": "Heading Structure",
		"h1_ideal":           "    exactly one <h1> (ideal)",
		"h1_warning":         "    {count} <h1> tags found",
		"heading_found":      "    {count} <{tag}> tags",

		"panel_advanced_seo":   "Advanced & Social SEO",
		"canonical_url":        "Canonical URL:",
		"canonical_not_found":  "Canonical URL: not found",
		"open_graph":           "Open Graph (Facebook, LinkedIn)",
		"og_tags_missing":      "    no Open Graph tags",
		"twitter_cards":        "Twitter Cards",
		"twitter_tags_missing": "    no Twitter Card tags",

		"panel_accessibility": "Accessibility (A11Y)",
		"images_no_alt":       "Images without alt text:",
		"images_of":           "of",
		"alt_text_needed":     "    add alt text to {count} images",
		"no_img_tags":         "No <img> tags on the page",
		"links_no_text":       "Links without accessible text:",
		"links_found":         "{count} found",
		"link_text_clarity":   "    give every link a descriptive text",

		"panel_resources": "Page Resources",
		"images_label":    "Images:",
		"css_label":       "CSS:",
		"js_label":        "JavaScript:",
		"external":        "external",
		"internal":        "inline",

		"panel_link_analysis": "Link Analysis",
		"total_links":         "Total links:",
		"internal_links":      "Internal links:",
		"external_links":      "External links:",
		"nofollow_links":      "Nofollow links:",
		"checking_links":      "Checking {count} internal links (sample capped at {limit})...",
		"checking_progress":   "checking links",
		"broken_link":         "[BROKEN {code}]",
		"check_failed":        "[CHECK FAILED]",
		"broken_summary":      "{count} broken links found",
		"no_broken_links":     "No broken links in the {count} checked",

		"panel_common_files":  "robots.txt & sitemap.xml",
		"robots_found":        "robots.txt: found",
		"robots_not_found":    "robots.txt: not found (status {code})",
		"robots_failed":       "robots.txt: check failed",
		"sitemap_found":       "sitemap.xml: found",
		"sitemap_not_found":   "sitemap.xml: not found (status {code})",
		"sitemap_failed":      "sitemap.xml: check failed",
		"sitemap_urls_found":  "    URLs listed:",
		"sitemap_parse_error": "    could not parse sitemap content",

		"panel_final_result":      "Final Result",
		"summary_title":           "Optimization Summary",
		"col_category":            "Category",
		"col_score":               "Score",
		"col_max":                 "Max",
		"cat_perf":                "Performance",
		"cat_sec":                 "Security",
		"cat_seo":                 "SEO",
		"cat_a11y":                "Accessibility",
		"final_score":             "Score: {score}/100 ({classification})",
		"class_excellent":         "Excellent",
		"class_good":              "Good",
		"class_needs_improvement": "Needs improvement",
		"class_not_optimized":     "Not optimized",
	},

	"pt-br": {
		"app_title":         "Auditoria de Site",
		"start_analysis":    "Iniciando análise de {url}",
		"analysis_complete": "Análise concluída",

		"connection_error_title":       "Erro de Conexão",
		"critical_error_accessing_url": "Erro crítico ao acessar a URL: {error}",
		"analysis_canceled":            "Análise cancelada",

		"panel_general_info":   "Informações Gerais e Desempenho",
		"final_url_analyzed":   "URL final analisada:",
		"ip_address":           "Endereço IP:",
		"could_not_resolve_ip": "não foi possível resolver",
		"status_code":          "Código de status:",
		"network_latency":      "Latência de rede (ping):",
		"not_measured_icmp":    "não medida (ICMP indisponível)",
		"total_load_time":      "Tempo total de carregamento:",
		"ttfb":                 "Tempo até o primeiro byte (TTFB):",
		"seconds":              "s",
		"slow_warning_3s":      " (lento, acima de 3s)",
		"slow_warning_ttfb":    " (lento, acima de 0.8s)",
		"page_size":            "Tamanho da página:",
		"server":               "Servidor:",
		"not_provided":         "não informado",
		"compression":          "Compressão:",
		"none":                 "nenhuma",

		"panel_tech": "Tecnologias Detectadas",

		"panel_onpage_security": "Segurança On-Page",
		"using_https":           "Usando HTTPS:",
		"https_yes":             "sim",
		"https_no":              "não",
		"security_headers":      "Cabeçalhos de segurança:",
		"headers_found":         "    {count} de {total} cabeçalhos recomendados encontrados",

		"panel_domain_ssl":     "Domínio e Certificado",
		"whois_error":          "Consulta WHOIS falhou",
		"domain_creation_date": "Domínio criado em:",
		"registrar":            "Registrador:",
		"ssl_error":            "Verificação do certificado falhou",
		"ssl_validity":         "Validade do certificado:",
		"ssl_expiry_warning":   " (expira em {days} dias)",
		"ssl_expired":          " (expirado)",

		"panel_seo_content":  "SEO e Conteúdo",
		"title":              "Título:",
		"not_found":          "não encontrado",
		"declared_language":  "Idioma declarado:",
		"lang_not_declared":  "não declarado",
		"meta_tags":          "Meta Tags",
		"meta_desc_missing":  "    - description: ausente",
		"meta_viewport_missing": "    - viewport: ausente",
		"headings_structure": "Estrutura de Cabeçalhos",
		"h1_ideal":           "    exatamente um <h1> (ideal)",
		"h1_warning":         "    {count} tags <h1> encontradas",
		"heading_found":      "    {count} tags <{tag}>",

		"panel_advanced_seo":   "SEO Avançado e Social",
		"canonical_url":        "URL canônica:",
		"canonical_not_found":  "URL canônica: não encontrada",
		"open_graph":           "Open Graph (Facebook, LinkedIn)",
		"og_tags_missing":      "    sem tags Open Graph",
		"twitter_cards":        "Twitter Cards",
		"twitter_tags_missing": "    sem tags Twitter Card",

		"panel_accessibility": "Acessibilidade (A11Y)",
		"images_no_alt":       "Imagens sem texto alternativo:",
		"images_of":           "de",
		"alt_text_needed":     "    adicione texto alternativo a {count} imagens",
		"no_img_tags":         "Nenhuma tag <img> na página",
		"links_no_text":       "Links sem texto acessível:",
		"links_found":         "{count} encontrados",
		"link_text_clarity":   "    dê a cada link um texto descritivo",

		"panel_resources": "Recursos da Página",
		"images_label":    "Imagens:",
		"css_label":       "CSS:",
		"js_label":        "JavaScript:",
		"external":        "externos",
		"internal":        "internos",

		"panel_link_analysis": "Análise de Links",
		"total_links":         "Total de links:",
		"internal_links":      "Links internos:",
		"external_links":      "Links externos:",
		"nofollow_links":      "Links nofollow:",
		"checking_links":      "Verificando {count} links internos (amostra limitada a {limit})...",
		"checking_progress":   "verificando links",
		"broken_link":         "[QUEBRADO {code}]",
		"check_failed":        "[FALHA NA VERIFICAÇÃO]",
		"broken_summary":      "{count} links quebrados encontrados",
		"no_broken_links":     "Nenhum link quebrado entre os {count} verificados",

		"panel_common_files":  "robots.txt e sitemap.xml",
		"robots_found":        "robots.txt: encontrado",
		"robots_not_found":    "robots.txt: não encontrado (status {code})",
		"robots_failed":       "robots.txt: verificação falhou",
		"sitemap_found":       "sitemap.xml: encontrado",
		"sitemap_not_found":   "sitemap.xml: não encontrado (status {code})",
		"sitemap_failed":      "sitemap.xml: verificação falhou",
		"sitemap_urls_found":  "    URLs listadas:",
		"sitemap_parse_error": "    não foi possível interpretar o sitemap",

		"panel_final_result":      "Resultado Final",
		"summary_title":           "Resumo de Otimização",
		"col_category":            "Categoria",
		"col_score":               "Pontuação",
		"col_max":                 "Máx",
		"cat_perf":                "Desempenho",
		"cat_sec":                 "Segurança",
		"cat_seo":                 "SEO",
		"cat_a11y":                "Acessibilidade",
		"final_score":             "Pontuação: {score}/100 ({classification})",
		"class_excellent":         "Excelente",
		"class_good":              "Bom",
		"class_needs_improvement": "Precisa melhorar",
		"class_not_optimized":     "Não otimizado",
	},
}
